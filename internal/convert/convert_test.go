package convert

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fahrenheit float64

type area interface {
	Area() float64
}

type disc struct {
	r float64
}

func (d disc) Area() float64 { return 3 * d.r * d.r }

func typ[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func TestPointerPredicate(t *testing.T) {
	assert.True(t, Pointer(typ[int](), typ[int]()), "identity")
	assert.True(t, Pointer(typ[fahrenheit](), typ[float64]()), "named to underlying")
	assert.True(t, Pointer(typ[float64](), typ[fahrenheit]()), "underlying to named")
	assert.False(t, Pointer(typ[int](), typ[float64]()), "different representations")
	assert.False(t, Pointer(typ[disc](), typ[area]()), "interfaces handled elsewhere")
}

func TestImplementsPredicate(t *testing.T) {
	assert.True(t, Implements(typ[disc](), typ[area]()), "address satisfies the interface")
	assert.True(t, Implements(typ[area](), typ[area]()), "interface identity")
	assert.False(t, Implements(typ[area](), typ[disc]()), "target must be an interface")
	assert.False(t, Implements(typ[int](), typ[area]()), "no methods")
}

func TestValueConvertible(t *testing.T) {
	assert.True(t, ValueConvertible(typ[int](), typ[int]()), "identity")
	assert.True(t, ValueConvertible(typ[int](), typ[float64]()), "numeric widening")
	assert.True(t, ValueConvertible(typ[fahrenheit](), typ[float64]()), "named to underlying")
	assert.True(t, ValueConvertible(typ[string](), typ[[]byte]()), "string to bytes")
	assert.False(t, ValueConvertible(typ[int](), typ[string]()), "code point conversion")
	assert.False(t, ValueConvertible(typ[rune](), typ[string]()), "rune to string likewise")
	assert.False(t, ValueConvertible(typ[string](), typ[int]()), "not convertible at all")
}

func TestEqualityComparable(t *testing.T) {
	assert.True(t, EqualityComparable(typ[int](), typ[int]()), "identity")
	assert.True(t, EqualityComparable(typ[int](), typ[float64]()), "numeric cross")
	assert.True(t, EqualityComparable(typ[fahrenheit](), typ[float64]()), "named cross")
	assert.False(t, EqualityComparable(typ[string](), typ[int]()), "string vs number")
	assert.False(t, EqualityComparable(typ[[]int](), typ[[]int]()), "not comparable")
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(reflect.ValueOf(5), reflect.ValueOf(5)), "same type")
	assert.True(t, Equal(reflect.ValueOf(5), reflect.ValueOf(5.0)), "int widens to float")
	assert.False(t, Equal(reflect.ValueOf(5.5), reflect.ValueOf(5)), "float never truncates")
	assert.True(t, Equal(reflect.ValueOf(int8(5)), reflect.ValueOf(int64(5))), "narrow int widens")
	assert.False(t, Equal(reflect.ValueOf("A"), reflect.ValueOf(65)), "string vs number")
	assert.True(t, Equal(reflect.ValueOf(fahrenheit(9)), reflect.ValueOf(9.0)), "named type")
}

func TestEqualSignedUnsignedWraps(t *testing.T) {
	// Same-size signed/unsigned has no lossless direction: the
	// operand wraps, matching Go integer conversion.
	assert.True(t, Equal(reflect.ValueOf(-1), reflect.ValueOf(uint(math.MaxUint))), "bit pattern match")
	assert.False(t, Equal(reflect.ValueOf(-1), reflect.ValueOf(uint(1))), "unequal patterns")
	assert.True(t, Equal(reflect.ValueOf(int8(-1)), reflect.ValueOf(int64(-1))), "sign preserved when widening")
}
