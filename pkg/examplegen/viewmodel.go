package examplegen

// ExampleViewModel is the presentable result of one generation pass. Exactly
// one of three states describes an instance:
//
//   - plain value: Value set, HasRaw and HasUnion false
//   - raw + value pair: HasRaw true, Raw carries the author text retained as
//     a side channel next to the synthesized Value
//   - union: HasUnion true, Values carries one entry per alternative that
//     produced a result; Value and Raw are empty
//
// Title is set iff HasTitle is true.
type ExampleViewModel struct {
	HasRaw   bool               `json:"hasRaw"`
	HasTitle bool               `json:"hasTitle"`
	HasUnion bool               `json:"hasUnion"`
	Value    string             `json:"value,omitempty"`
	Title    string             `json:"title,omitempty"`
	Raw      string             `json:"raw,omitempty"`
	Values   []ExampleViewModel `json:"values,omitempty"`
}

func plainValue(value string) ExampleViewModel {
	return ExampleViewModel{Value: value}
}

func (vm ExampleViewModel) withTitle(title string) ExampleViewModel {
	if title == "" {
		return vm
	}
	vm.HasTitle = true
	vm.Title = title
	return vm
}
