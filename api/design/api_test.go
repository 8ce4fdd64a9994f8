package design

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"goa.design/goa/v3/eval"
	"goa.design/goa/v3/expr"
)

func TestDesignEvaluates(t *testing.T) {
	require.NoError(t, eval.RunDSL())

	assert.Equal(t, "consultsite", expr.Root.API.Name)

	submit := expr.Root.Service("inquiry").Method("submit")
	require.NotNil(t, submit)
	assert.NotEmpty(t, submit.Errors)

	site := expr.Root.Service("site")
	require.NotNil(t, site)
	assert.Len(t, site.Methods, 5)
}
