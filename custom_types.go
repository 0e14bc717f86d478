package main

////////////////////////////////////////////////////////////////////////////////////////////////////////////////////////

type Set[T comparable] map[T]struct{}

func (set Set[T]) Add(item T) {
	set[item] = struct{}{}
}

func (set Set[T]) Contains(item T) bool {
	_, ok := set[item]
	return ok
}

func (set Set[T]) Values() []T {
	values := make([]T, 0, len(set))
	for val := range set {
		values = append(values, val)
	}

	return values
}
