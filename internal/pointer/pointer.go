package pointer

func To[T any](t T) *T {
	return &t
}

func Zero[T any]() T {
	var z T
	return z
}
