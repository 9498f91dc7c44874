package icon

type cacheKey struct {
	src     *Source
	size    int
	palette Palette
}

// Cache keeps the variants of one icon slot and regenerates them only when
// the source, size or palette changes.
type Cache struct {
	key   cacheKey
	set   *VariantSet
	built int
}

// Variants returns the variant set for src, reusing the cached set when
// nothing it depends on changed. A nil source clears the slot.
func (c *Cache) Variants(src *Source, size int, p Palette) *VariantSet {
	if src == nil {
		c.key = cacheKey{}
		c.set = nil
		return nil
	}
	key := cacheKey{src: src, size: size, palette: p}
	if c.set != nil && c.key == key {
		return c.set
	}
	c.key = key
	c.set = Generate(src, size, p)
	c.built++
	return c.set
}

// Current is the last set returned, nil when the slot is empty.
func (c *Cache) Current() *VariantSet {
	return c.set
}

// Generations counts how many times the set was rebuilt.
func (c *Cache) Generations() int {
	return c.built
}
