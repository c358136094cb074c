// Package frame implements the small typed columnar table the report
// pipeline runs on: vectors of a single data type, named columns with an
// optional missing mask, and a dataframe supporting sort and group-by.
package frame

import (
	"fmt"
	"time"
)

// DataTypes are the element types a Vector can hold.
type DataTypes uint8

const (
	DTunknown DataTypes = iota
	DTfloat
	DTint
	DTstring
	DTdate
	DTbool
)

func (dt DataTypes) String() string {
	switch dt {
	case DTfloat:
		return "float"
	case DTint:
		return "int"
	case DTstring:
		return "string"
	case DTdate:
		return "date"
	case DTbool:
		return "bool"
	default:
		return "unknown"
	}
}

// Vector holds a slice of a single supported type. Index errors and type
// mismatches panic: they are programming errors, not data errors.
type Vector struct {
	dt   DataTypes
	data any
}

// NewVector wraps data, which must be one of the supported slice types.
func NewVector(data any) (*Vector, error) {
	var dt DataTypes
	switch data.(type) {
	case []float64:
		dt = DTfloat
	case []int:
		dt = DTint
	case []string:
		dt = DTstring
	case []time.Time:
		dt = DTdate
	case []bool:
		dt = DTbool
	default:
		return nil, fmt.Errorf("unsupported data type %T in NewVector", data)
	}

	return &Vector{dt: dt, data: data}, nil
}

// MakeVector allocates a zeroed vector of type dt with n elements.
func MakeVector(dt DataTypes, n int) *Vector {
	switch dt {
	case DTfloat:
		return &Vector{dt: dt, data: make([]float64, n)}
	case DTint:
		return &Vector{dt: dt, data: make([]int, n)}
	case DTstring:
		return &Vector{dt: dt, data: make([]string, n)}
	case DTdate:
		return &Vector{dt: dt, data: make([]time.Time, n)}
	case DTbool:
		return &Vector{dt: dt, data: make([]bool, n)}
	default:
		panic(fmt.Errorf("cannot make Vector of type %s", dt))
	}
}

func (v *Vector) VectorType() DataTypes {
	return v.dt
}

func (v *Vector) Len() int {
	switch v.dt {
	case DTfloat:
		return len(v.data.([]float64))
	case DTint:
		return len(v.data.([]int))
	case DTstring:
		return len(v.data.([]string))
	case DTdate:
		return len(v.data.([]time.Time))
	case DTbool:
		return len(v.data.([]bool))
	default:
		panic(fmt.Errorf("unexpected type in Vector.Len"))
	}
}

func (v *Vector) check(dt DataTypes, indx int) {
	if v.dt != dt {
		panic(fmt.Errorf("vector is %s, not %s", v.dt, dt))
	}

	if indx < 0 || indx >= v.Len() {
		panic(fmt.Errorf("index %d out of range", indx))
	}
}

func (v *Vector) SetFloat(val float64, indx int) {
	v.check(DTfloat, indx)
	v.data.([]float64)[indx] = val
}

func (v *Vector) SetInt(val, indx int) {
	v.check(DTint, indx)
	v.data.([]int)[indx] = val
}

func (v *Vector) SetString(val string, indx int) {
	v.check(DTstring, indx)
	v.data.([]string)[indx] = val
}

func (v *Vector) SetDate(val time.Time, indx int) {
	v.check(DTdate, indx)
	v.data.([]time.Time)[indx] = val
}

func (v *Vector) SetBool(val bool, indx int) {
	v.check(DTbool, indx)
	v.data.([]bool)[indx] = val
}

// AsAny returns the underlying slice.
func (v *Vector) AsAny() any {
	return v.data
}

// AsFloat returns the underlying floats, converting ints if needed.
func (v *Vector) AsFloat() []float64 {
	switch v.dt {
	case DTfloat:
		return v.data.([]float64)
	case DTint:
		xOut := make([]float64, v.Len())
		for ind, xx := range v.data.([]int) {
			xOut[ind] = float64(xx)
		}

		return xOut
	default:
		panic(fmt.Errorf("cannot view %s vector as float", v.dt))
	}
}

func (v *Vector) AsInt() []int {
	if v.dt != DTint {
		panic(fmt.Errorf("cannot view %s vector as int", v.dt))
	}

	return v.data.([]int)
}

func (v *Vector) AsString() []string {
	if v.dt != DTstring {
		panic(fmt.Errorf("cannot view %s vector as string", v.dt))
	}

	return v.data.([]string)
}

func (v *Vector) AsDate() []time.Time {
	if v.dt != DTdate {
		panic(fmt.Errorf("cannot view %s vector as date", v.dt))
	}

	return v.data.([]time.Time)
}

func (v *Vector) AsBool() []bool {
	if v.dt != DTbool {
		panic(fmt.Errorf("cannot view %s vector as bool", v.dt))
	}

	return v.data.([]bool)
}

func (v *Vector) Element(indx int) any {
	if indx < 0 || indx >= v.Len() {
		panic(fmt.Errorf("index %d out of range", indx))
	}

	switch v.dt {
	case DTfloat:
		return v.data.([]float64)[indx]
	case DTint:
		return v.data.([]int)[indx]
	case DTstring:
		return v.data.([]string)[indx]
	case DTdate:
		return v.data.([]time.Time)[indx]
	case DTbool:
		return v.data.([]bool)[indx]
	default:
		panic(fmt.Errorf("unexpected type in Element"))
	}
}

func (v *Vector) Append(val any) {
	switch v.dt {
	case DTfloat:
		v.data = append(v.data.([]float64), val.(float64))
	case DTint:
		v.data = append(v.data.([]int), val.(int))
	case DTstring:
		v.data = append(v.data.([]string), val.(string))
	case DTdate:
		v.data = append(v.data.([]time.Time), val.(time.Time))
	case DTbool:
		v.data = append(v.data.([]bool), val.(bool))
	default:
		panic(fmt.Errorf("unexpected type in Append"))
	}
}

func (v *Vector) Copy() *Vector {
	vCopy := &Vector{dt: v.dt}
	switch v.dt {
	case DTfloat:
		x := make([]float64, v.Len())
		copy(x, v.data.([]float64))
		vCopy.data = x
	case DTint:
		x := make([]int, v.Len())
		copy(x, v.data.([]int))
		vCopy.data = x
	case DTstring:
		x := make([]string, v.Len())
		copy(x, v.data.([]string))
		vCopy.data = x
	case DTdate:
		x := make([]time.Time, v.Len())
		copy(x, v.data.([]time.Time))
		vCopy.data = x
	case DTbool:
		x := make([]bool, v.Len())
		copy(x, v.data.([]bool))
		vCopy.data = x
	default:
		panic(fmt.Errorf("unexpected type in Vector.Copy"))
	}

	return vCopy
}

func (v *Vector) Swap(i, j int) {
	switch v.dt {
	case DTfloat:
		x := v.data.([]float64)
		x[i], x[j] = x[j], x[i]
	case DTint:
		x := v.data.([]int)
		x[i], x[j] = x[j], x[i]
	case DTstring:
		x := v.data.([]string)
		x[i], x[j] = x[j], x[i]
	case DTdate:
		x := v.data.([]time.Time)
		x[i], x[j] = x[j], x[i]
	case DTbool:
		x := v.data.([]bool)
		x[i], x[j] = x[j], x[i]
	default:
		panic(fmt.Errorf("unexpected type in Vector.Swap"))
	}
}

// Less orders floats, ints, strings and dates. Bools do not order.
func (v *Vector) Less(i, j int) bool {
	switch v.dt {
	case DTfloat:
		return v.data.([]float64)[i] < v.data.([]float64)[j]
	case DTint:
		return v.data.([]int)[i] < v.data.([]int)[j]
	case DTstring:
		return v.data.([]string)[i] < v.data.([]string)[j]
	case DTdate:
		return v.data.([]time.Time)[i].Before(v.data.([]time.Time)[j])
	default:
		panic(fmt.Errorf("type %s does not order", v.dt))
	}
}
