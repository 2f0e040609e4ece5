package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strp(s string) *string { return &s }

func TestCleanImageRefNil(t *testing.T) {
	assert.Nil(t, CleanImageRef(nil))
}

func TestCleanImageRefEmptySentinel(t *testing.T) {
	assert.Nil(t, CleanImageRef(strp("character(0)")))
	assert.Nil(t, CleanImageRef(strp("")))
	assert.Nil(t, CleanImageRef(strp("   ")))
}

func TestCleanImageRefVectorLiteral(t *testing.T) {
	got := CleanImageRef(strp(`c("http://img/a.jpg","http://img/b.jpg")`))
	assert.NotNil(t, got)
	assert.Equal(t, "http://img/a.jpg", *got)
}

func TestCleanImageRefVectorLiteralEscaped(t *testing.T) {
	got := CleanImageRef(strp(`c(\"http://img/a.jpg\", \"http://img/b.jpg\")`))
	assert.NotNil(t, got)
	assert.Equal(t, "http://img/a.jpg", *got)
}

func TestCleanImageRefVectorLiteralNoQuotes(t *testing.T) {
	// No quoted element inside the wrapper; falls through to plain
	// handling instead of failing.
	got := CleanImageRef(strp(`c(http://img/a.jpg)`))
	assert.NotNil(t, got)
	assert.Equal(t, "c(http://img/a.jpg)", *got)
}

func TestCleanImageRefPlainQuoted(t *testing.T) {
	got := CleanImageRef(strp(`"http://img/a.jpg"`))
	assert.NotNil(t, got)
	assert.Equal(t, "http://img/a.jpg", *got)
}

func TestCleanImageRefIdempotent(t *testing.T) {
	inputs := []string{
		"http://img/a.jpg",
		`"http://img/a.jpg"`,
		`c("http://img/a.jpg","http://img/b.jpg")`,
	}
	for _, in := range inputs {
		once := CleanImageRef(strp(in))
		if assert.NotNil(t, once, in) {
			twice := CleanImageRef(once)
			if assert.NotNil(t, twice, in) {
				assert.Equal(t, *once, *twice, in)
			}
		}
	}
}

func TestFirstImage(t *testing.T) {
	assert.Nil(t, FirstImage(nil))
	assert.Nil(t, FirstImage([]string{}))
	got := FirstImage([]string{`"http://img/a.jpg"`, "http://img/b.jpg"})
	assert.NotNil(t, got)
	assert.Equal(t, "http://img/a.jpg", *got)
}
