package catalogue

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DropLuck_Go/internal/domain"
)

func TestBarterPreset(t *testing.T) {
	c := Barter()
	require.NoError(t, c.Validate())
	assert.Len(t, c.Entries, 17)
	assert.Equal(t, 423, c.TotalWeight())

	p, err := c.Probability(domain.ItemEnderPearl)
	require.NoError(t, err)
	assert.InDelta(t, 20.0/423.0, p, 1e-15)

	lo, hi, err := c.Range(domain.ItemEnderPearl)
	require.NoError(t, err)
	assert.Equal(t, 4, lo)
	assert.Equal(t, 8, hi)

	avg, err := c.Average(domain.ItemEnderPearl)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, avg, 1e-12)
}

func TestBlazePreset(t *testing.T) {
	c := Blaze()
	require.NoError(t, c.Validate())

	p, err := c.Probability(domain.ItemBlazeRod)
	require.NoError(t, err)
	assert.Equal(t, 1.0, p)

	avg, err := c.Average(domain.ItemBlazeRod)
	require.NoError(t, err)
	assert.Equal(t, 0.5, avg)
}

func TestLookupMissingItem(t *testing.T) {
	c := Blaze()

	_, err := c.Probability(domain.ItemEnderPearl)
	assert.ErrorIs(t, err, domain.ErrItemNotInCatalogue)
	_, err = c.Average(domain.ItemEnderPearl)
	assert.ErrorIs(t, err, domain.ErrItemNotInCatalogue)
	_, _, err = c.Range(domain.ItemEnderPearl)
	assert.ErrorIs(t, err, domain.ErrItemNotInCatalogue)
	assert.False(t, c.Contains(domain.ItemEnderPearl))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cat     Catalogue
		wantErr error
	}{
		{"empty", New("e"), domain.ErrEmptyCatalogue},
		{"zero weight", New("z", domain.DropEntry{Item: "a", Weight: 0, MaxCount: 1}), domain.ErrInvalidCatalogEntry},
		{"inverted range", New("r", domain.DropEntry{Item: "a", Weight: 1, MinCount: 3, MaxCount: 2}), domain.ErrInvalidCatalogEntry},
		{"duplicate", New("d",
			domain.DropEntry{Item: "a", Weight: 1, MinCount: 1, MaxCount: 1},
			domain.DropEntry{Item: "a", Weight: 2, MinCount: 1, MaxCount: 1},
		), domain.ErrDuplicateItem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.cat.Validate(), tt.wantErr)
		})
	}
}

func TestPreset(t *testing.T) {
	c, ok := Preset(NameBarter)
	assert.True(t, ok)
	assert.Equal(t, NameBarter, c.Name)

	_, ok = Preset("nope")
	assert.False(t, ok)
}

func TestLoader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	doc := `name: custom
entries:
  - {item: ender_pearl, weight: 1, min_count: 1, max_count: 6}
  - {item: gravel, weight: 3, min_count: 1, max_count: 1}
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	c, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "custom", c.Name)
	assert.Equal(t, 4, c.TotalWeight())
	assert.Equal(t, domain.ItemEnderPearl, c.Entries[0].Item)

	_, err = NewLoader().Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	_, err = NewLoader().Parse("bad", []byte("name: bad\nentries:\n  - {item: a, weight: 1, min_count: 5, max_count: 1}\n"))
	assert.ErrorIs(t, err, domain.ErrInvalidCatalogEntry)
}
