package assert

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestCollector_Unwrap(t *testing.T) {
	var (
		ErrA = errors.New("A")
		ErrB = errors.New("B")
		err  = CollectErrors().Add(ErrA).Add(ErrB).Result()
		as   = new(Collector)
	)

	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrA)
	assert.ErrorIs(t, err, ErrB)
	assert.ErrorAs(t, err, &as)
}

func TestCollector_Error(t *testing.T) {
	var (
		ErrA = errors.New("A")
		ErrB = errors.New("B")
		err  = CollectErrors(" ").Add(ErrA, nil).Add(nil).Add(ErrB).Addf("%s", "C").Result()
	)
	require.NotNil(t, err)
	assert.Equal(t, "A B C", err.Error())
}

func TestCollector_Check(t *testing.T) {
	doc := map[string]any{
		"name":  "svc",
		"ports": map[string]any{"http": 80},
	}
	c := CollectErrors("; ").
		Check(func() {
			That(doc, "doc").ContainsKeys("name ports")
		}).
		Check(func() {
			That(doc["ports"], "doc.ports").IsArray()
		}).
		Check(func() {
			That(Field(doc, "owner"), "doc.owner").IsDefined().IsTypeof(TypeString)
		})

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 2, c.Failures())
	c.Add(errors.New("not an assertion"))
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 2, c.Failures(), "Only assertion failures should be counted")
	err := c.Result()
	require.Error(t, err)
	assert.Equal(t, "doc.ports is not an Array; doc.owner is undefined; not an assertion", err.Error())

	var aerr *AssertionError
	assert.ErrorAs(t, err, &aerr)
	assert.ErrorIs(t, err, &AssertionError{})
}

func TestCollector_Check_Passing(t *testing.T) {
	c := CollectErrors().Check(func() {
		Assert(true)
	})
	assert.Equal(t, 0, c.Len())
	assert.NoError(t, c.Result())
}
