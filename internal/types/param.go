package types

// Param represents a named parameter reference (":name").
// This is exported from the internal package so the base package can use it,
// but external users cannot import this package.
type Param struct {
	Leaf
	Name string
}

// GetName returns the parameter name.
func (p Param) GetName() string {
	return p.Name
}

// Collect records the name and writes its placeholder.
func (p Param) Collect(w Writer, c *Collector) error {
	_, err := w.WriteString(c.Named(p.Name))
	return err
}

// Bound is a value sent to the database as a positional argument.
type Bound struct {
	Leaf
	Value any
}

// Collect binds the value and writes the dialect placeholder.
func (b Bound) Collect(w Writer, c *Collector) error {
	_, err := w.WriteString(c.Bind(b.Value))
	return err
}
