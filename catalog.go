package units

import (
	"fmt"
	"slices"
)

// Registry resolves exact unit symbols.
//
// Implementations receive symbols already passed through NormalizeSymbol.
type Registry interface {
	Lookup(symbol string) (Unit, bool)
	Units() []Unit
}

// UnitList is a finite registry backed by a slice, searched in order.
type UnitList []Unit

// Lookup returns the first unit whose normalized symbol equals symbol.
func (l UnitList) Lookup(symbol string) (Unit, bool) {
	for _, u := range l {
		if NormalizeSymbol(u.symbol) == symbol {
			return u, true
		}
	}
	return Unit{}, false
}

// Units returns the list itself.
func (l UnitList) Units() []Unit { return l }

// UnitMap is a finite registry keyed by arbitrary names. Lookups match the
// units' symbols, not the keys.
type UnitMap map[string]Unit

// Lookup returns the unit whose normalized symbol equals symbol. Keys are
// visited in sorted order so duplicate symbols resolve deterministically.
func (m UnitMap) Lookup(symbol string) (Unit, bool) {
	for _, u := range m.Units() {
		if NormalizeSymbol(u.symbol) == symbol {
			return u, true
		}
	}
	return Unit{}, false
}

// Units returns the values ordered by key.
func (m UnitMap) Units() []Unit {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	out := make([]Unit, len(keys))
	for i, k := range keys {
		out[i] = m[k]
	}
	return out
}

// Catalog is an immutable set of named units indexed by symbol.
// It is built once by a CatalogBuilder and safe for concurrent reads.
type Catalog struct {
	bySymbol map[string]Unit
	byName   map[string]Unit
	names    []string
}

// Lookup returns the unit with the given (normalized) symbol.
func (c *Catalog) Lookup(symbol string) (Unit, bool) {
	u, ok := c.bySymbol[symbol]
	return u, ok
}

// Unit returns the unit registered under name, for example "kilometers".
func (c *Catalog) Unit(name string) (Unit, bool) {
	u, ok := c.byName[name]
	return u, ok
}

// Names returns the unit names in definition order.
func (c *Catalog) Names() []string {
	return slices.Clone(c.names)
}

// Units returns the units in definition order. Aliases are not repeated.
func (c *Catalog) Units() []Unit {
	out := make([]Unit, 0, len(c.names))
	seen := make(map[string]bool, len(c.names))
	for _, n := range c.names {
		u := c.byName[n]
		if seen[u.symbol] {
			continue
		}
		seen[u.symbol] = true
		out = append(out, u)
	}
	return out
}

// Len returns the number of names, aliases included.
func (c *Catalog) Len() int { return len(c.names) }

// CatalogBuilder assembles a Catalog from definitions that may only refer to
// units defined earlier. The first error is kept and reported by Build;
// later calls become no-ops, so definitions can be chained without checks:
//
//	b := units.NewCatalogBuilder()
//	b.Base("meters", "m", units.Length)
//	b.Prefixed("kilometers", "meters", "k")
//	b.Quotient("kilometersPerHour", "kilometers", "hours", "km/h") // error: hours undefined
//	cat, err := b.Build()
type CatalogBuilder struct {
	cat *Catalog
	err error
}

// NewCatalogBuilder returns an empty builder.
func NewCatalogBuilder() *CatalogBuilder {
	return &CatalogBuilder{cat: &Catalog{
		bySymbol: make(map[string]Unit),
		byName:   make(map[string]Unit),
	}}
}

// Build returns the catalog or the first definition error. The builder must
// not be used afterwards.
func (b *CatalogBuilder) Build() (*Catalog, error) {
	if b.err != nil {
		return nil, b.err
	}
	c := b.cat
	b.cat = nil
	Logger().Debug("units: catalog built", "names", len(c.names), "symbols", len(c.bySymbol))
	return c, nil
}

// Add registers u under name and its symbol.
func (b *CatalogBuilder) Add(name string, u Unit) *CatalogBuilder {
	if b.err != nil {
		return b
	}
	if _, dup := b.cat.byName[name]; dup {
		return b.fail("%w: duplicate name %q", ErrCatalog, name)
	}
	sym := NormalizeSymbol(u.symbol)
	if prev, dup := b.cat.bySymbol[sym]; dup {
		return b.fail("%w: %s reuses symbol %q of an earlier unit (scale %g)", ErrCatalog, name, u.symbol, prev.scale)
	}
	b.cat.bySymbol[sym] = u
	b.cat.byName[name] = u
	b.cat.names = append(b.cat.names, name)
	return b
}

// Alias registers an additional name for an existing unit.
func (b *CatalogBuilder) Alias(name, of string) *CatalogBuilder {
	u, ok := b.ref(of)
	if !ok {
		return b
	}
	if _, dup := b.cat.byName[name]; dup {
		return b.fail("%w: duplicate name %q", ErrCatalog, name)
	}
	b.cat.byName[name] = u
	b.cat.names = append(b.cat.names, name)
	return b
}

// SymbolAlias makes symbol resolve to the unit registered as name, for
// alternative spellings such as "sec" or "hr".
func (b *CatalogBuilder) SymbolAlias(symbol, name string) *CatalogBuilder {
	u, ok := b.ref(name)
	if !ok {
		return b
	}
	sym := NormalizeSymbol(symbol)
	if _, dup := b.cat.bySymbol[sym]; dup {
		return b.fail("%w: symbol alias %q already defined", ErrCatalog, symbol)
	}
	b.cat.bySymbol[sym] = u
	return b
}

// Base defines a base unit of dimension dim.
func (b *CatalogBuilder) Base(name, symbol string, dim Dimensions) *CatalogBuilder {
	return b.Add(name, MakeUnit(symbol, dim))
}

// Scaled defines name as factor × from.
func (b *CatalogBuilder) Scaled(name, from string, factor float64, symbol string) *CatalogBuilder {
	u, ok := b.ref(from)
	if !ok {
		return b
	}
	return b.Add(name, u.Mul(factor).WithSymbol(symbol))
}

// Prefixed defines name as from with an SI prefix.
func (b *CatalogBuilder) Prefixed(name, from, prefix string) *CatalogBuilder {
	u, ok := b.ref(from)
	if !ok {
		return b
	}
	p, err := u.WithSIPrefix(prefix)
	if err != nil {
		return b.fail("%w: %s: %w", ErrCatalog, name, err)
	}
	return b.Add(name, p)
}

// Product defines name as x·y.
func (b *CatalogBuilder) Product(name, x, y, symbol string) *CatalogBuilder {
	return b.combine(name, x, y, symbol, Unit.Times)
}

// Quotient defines name as x/y.
func (b *CatalogBuilder) Quotient(name, x, y, symbol string) *CatalogBuilder {
	return b.combine(name, x, y, symbol, Unit.Per)
}

// Power defines name as from^n.
func (b *CatalogBuilder) Power(name, from string, n int, symbol string) *CatalogBuilder {
	u, ok := b.ref(from)
	if !ok {
		return b
	}
	p, err := u.Pow(n)
	if err != nil {
		return b.fail("%w: %s: %w", ErrCatalog, name, err)
	}
	return b.Add(name, coherent(p).WithSymbol(symbol))
}

// Affine defines name as factor × from shifted by offset, expressed in the
// new unit: base = (amount - offset) * factor * from.scale.
func (b *CatalogBuilder) Affine(name, from string, factor, offset float64, symbol string) *CatalogBuilder {
	u, ok := b.ref(from)
	if !ok {
		return b
	}
	if u.IsAffine() {
		return b.fail("%w: %s: anchor %q already has an offset", ErrCatalog, name, u.symbol)
	}
	return b.Add(name, u.Mul(factor).WithOffset(offset).WithSymbol(symbol))
}

func (b *CatalogBuilder) combine(name, x, y, symbol string, op func(Unit, Unit) (Unit, error)) *CatalogBuilder {
	ux, ok := b.ref(x)
	if !ok {
		return b
	}
	uy, ok := b.ref(y)
	if !ok {
		return b
	}
	u, err := op(ux, uy)
	if err != nil {
		return b.fail("%w: %s: %w", ErrCatalog, name, err)
	}
	return b.Add(name, coherent(u).WithSymbol(symbol))
}

// coherent marks u as accepting SI prefixes when it has scale 1, as newtons
// and pascals do.
func coherent(u Unit) Unit {
	u.prefixable = u.scale == 1
	return u
}

// AcceptPrefixes lets parsers prepend SI prefixes to the named units, for
// units such as grams or liters that are not coherent but take prefixes.
func (b *CatalogBuilder) AcceptPrefixes(names ...string) *CatalogBuilder {
	return b.markPrefixes(true, names)
}

// RejectPrefixes stops parsers from prefixing the named units, for base units
// such as kilograms whose symbol already carries a prefix.
func (b *CatalogBuilder) RejectPrefixes(names ...string) *CatalogBuilder {
	return b.markPrefixes(false, names)
}

// markPrefixes rewrites every name and symbol entry of the named units.
func (b *CatalogBuilder) markPrefixes(accept bool, names []string) *CatalogBuilder {
	for _, name := range names {
		old, ok := b.ref(name)
		if !ok {
			return b
		}
		u := old
		u.prefixable = accept
		for n, v := range b.cat.byName {
			if v.Equal(old) {
				b.cat.byName[n] = u
			}
		}
		for sym, v := range b.cat.bySymbol {
			if v.Equal(old) {
				b.cat.bySymbol[sym] = u
			}
		}
	}
	return b
}

// ref looks up a previously defined unit, recording an error when it is
// missing.
func (b *CatalogBuilder) ref(name string) (Unit, bool) {
	if b.err != nil {
		return Unit{}, false
	}
	u, ok := b.cat.byName[name]
	if !ok {
		b.fail("%w: %q referenced before definition", ErrCatalog, name)
		return Unit{}, false
	}
	return u, true
}

func (b *CatalogBuilder) fail(format string, args ...any) *CatalogBuilder {
	if b.err == nil {
		b.err = fmt.Errorf(format, args...)
	}
	return b
}
