package catalog

// Brand groups an ordered list of model names under a manufacturer.
type Brand struct {
	Name   string   `json:"name"`
	Models []string `json:"models"`
}

// Catalog holds the fixed brand/model and color reference data the bot
// presents as numbered lists. Loaded once at startup, never mutated.
type Catalog struct {
	brands []Brand
	colors []string
}

// New returns a Catalog backed by copies of the supplied data.
func New(brands []Brand, colors []string) *Catalog {
	copied := make([]Brand, len(brands))
	for i, b := range brands {
		copied[i] = Brand{Name: b.Name, Models: append([]string(nil), b.Models...)}
	}
	return &Catalog{
		brands: copied,
		colors: append([]string(nil), colors...),
	}
}

// BrandNames returns the brand names in presentation order.
func (c *Catalog) BrandNames() []string {
	names := make([]string, len(c.brands))
	for i, b := range c.brands {
		names[i] = b.Name
	}
	return names
}

// BrandAt resolves a 1-based menu ordinal to a brand name.
func (c *Catalog) BrandAt(ordinal int) (string, bool) {
	if ordinal < 1 || ordinal > len(c.brands) {
		return "", false
	}
	return c.brands[ordinal-1].Name, true
}

// Models returns the model names for a brand, in presentation order.
func (c *Catalog) Models(brand string) []string {
	for _, b := range c.brands {
		if b.Name == brand {
			return append([]string(nil), b.Models...)
		}
	}
	return nil
}

// ModelAt resolves a 1-based menu ordinal within a brand's model list.
func (c *Catalog) ModelAt(brand string, ordinal int) (string, bool) {
	models := c.Models(brand)
	if ordinal < 1 || ordinal > len(models) {
		return "", false
	}
	return models[ordinal-1], true
}

// Colors returns the fixed color list in presentation order.
func (c *Catalog) Colors() []string {
	return append([]string(nil), c.colors...)
}

// ColorAt resolves a 1-based menu ordinal to a color name.
func (c *Catalog) ColorAt(ordinal int) (string, bool) {
	if ordinal < 1 || ordinal > len(c.colors) {
		return "", false
	}
	return c.colors[ordinal-1], true
}
