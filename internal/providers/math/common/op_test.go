package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpArity(t *testing.T) {
	for _, op := range []Op{OpAdd, OpSub, OpMul, OpDiv, OpMod, OpPow} {
		assert.Equal(t, 2, op.Arity(), op.String())
		assert.True(t, op.IsBinary())
	}
	for _, op := range []Op{OpNeg, OpSqrt, OpLog10, OpSin, OpAtanh} {
		assert.Equal(t, 1, op.Arity(), op.String())
		assert.True(t, op.IsUnary())
	}
	assert.Equal(t, 0, OpInvalid.Arity())
	assert.Equal(t, 0, Op(200).Arity())
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "+", OpAdd.String())
	assert.Equal(t, "cubrt", OpCbrt.String())
	assert.Equal(t, "invalid", Op(250).String())
}

func TestOpIsTrig(t *testing.T) {
	assert.True(t, OpSin.IsTrig())
	assert.True(t, OpAtanh.IsTrig())
	assert.False(t, OpLog10.IsTrig())
	assert.False(t, OpAdd.IsTrig())
}
