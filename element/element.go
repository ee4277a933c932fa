// Package element is the small contract between diagram code and
// whatever actually draws things.
//
// A Host knows how to make an element from a tag, some attributes,
// and children that already exist, and how to make a text node.
// That's all.  The HTML host here builds golang.org/x/net/html nodes,
// but anything that implements those two primitives can stand in.
package element

import (
	"fmt"
	"strconv"
)

// Host constructs nodes of type N.
type Host[N any] interface {
	// Element makes an element with the given tag, attributes,
	// and children.
	Element(tag string, attrs Attrs, children []N) N

	// Text makes a text node.
	Text(s string) N
}

// Attr is one attribute.  Value should be a string or a number.
type Attr struct {
	Name  string
	Value interface{}
}

// Attrs is an ordered attribute bag.
type Attrs []Attr

// A builds Attrs from alternating names and values, like
//
//	A("cx", 10, "cy", 20, "fill", "red")
//
// A panics if given an odd number of arguments or a non-string name.
func A(kvs ...interface{}) Attrs {
	if len(kvs)%2 != 0 {
		panic(fmt.Sprintf("element.A: odd number of arguments: %d", len(kvs)))
	}
	acc := make(Attrs, 0, len(kvs)/2)
	for i := 0; i < len(kvs); i += 2 {
		name, is := kvs[i].(string)
		if !is {
			panic(fmt.Sprintf("element.A: name %#v isn't a string", kvs[i]))
		}
		acc = append(acc, Attr{name, kvs[i+1]})
	}
	return acc
}

// Get returns the value of the first attribute with the given name.
func (as Attrs) Get(name string) (interface{}, bool) {
	for _, a := range as {
		if a.Name == name {
			return a.Value, true
		}
	}
	return nil, false
}

// With returns a copy with the named attribute replaced (or
// appended).
func (as Attrs) With(name string, value interface{}) Attrs {
	acc := make(Attrs, 0, len(as)+1)
	found := false
	for _, a := range as {
		if a.Name == name {
			a.Value = value
			found = true
		}
		acc = append(acc, a)
	}
	if !found {
		acc = append(acc, Attr{name, value})
	}
	return acc
}

// Format renders an attribute value.
//
// Numbers use the shortest decimal representation, so 32 is "32" and
// 25.6 is "25.6".
func Format(v interface{}) string {
	switch vv := v.(type) {
	case string:
		return vv
	case float64:
		return Float(vv)
	case float32:
		return strconv.FormatFloat(float64(vv), 'f', -1, 32)
	case int:
		return strconv.Itoa(vv)
	case int64:
		return strconv.FormatInt(vv, 10)
	case bool:
		return strconv.FormatBool(vv)
	case fmt.Stringer:
		return vv.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Float formats a number the way Format does.
func Float(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
