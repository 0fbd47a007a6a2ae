package domain

// DropEntry is one weighted outcome in a drop table.
type DropEntry struct {
	Item     Item `json:"item" yaml:"item" validate:"required"`
	Weight   int  `json:"weight" yaml:"weight" validate:"min=1"`
	MinCount int  `json:"min_count" yaml:"min_count" validate:"min=0"`
	MaxCount int  `json:"max_count" yaml:"max_count" validate:"gtefield=MinCount"`
}

// Average is the mean count of a single draw of this entry.
func (e DropEntry) Average() float64 {
	return float64(e.MinCount+e.MaxCount) / 2
}

// DrawResult records one sample from a drop table.
type DrawResult struct {
	Roll  int  `json:"roll"`
	Item  Item `json:"item"`
	Count int  `json:"count"`
}
