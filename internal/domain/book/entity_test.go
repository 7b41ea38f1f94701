package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBook_UpdateInfo(t *testing.T) {
	b := NewBook(7, "Old", "Someone", 1999)
	b.UpdateInfo("", "Other", 0)

	assert.Equal(t, &Book{ID: 7, Title: "", Author: "Other", Year: 0}, b)
}

func TestBook_Matches(t *testing.T) {
	b := NewBook(1, "Some random book", "Jacob Wal", 2013)

	assert.True(t, b.Matches(SearchCriteria{}))
	assert.True(t, b.Matches(SearchCriteria{Title: "Some random book"}))
	assert.True(t, b.Matches(SearchCriteria{Title: "\t", Author: "Jacob Wal"}))
	assert.False(t, b.Matches(SearchCriteria{Title: "Some random book", Author: "Kim Min"}))
	assert.False(t, b.Matches(SearchCriteria{Author: "jacob wal"}))
}

func TestSearchCriteria_IsBlank(t *testing.T) {
	assert.True(t, SearchCriteria{}.IsBlank())
	assert.True(t, SearchCriteria{Title: " ", Author: "\n"}.IsBlank())
	assert.False(t, SearchCriteria{Author: "Kim Min"}.IsBlank())
}

func TestBook_Clone(t *testing.T) {
	b := NewBook(1, "a", "b", 2000)
	c := b.Clone()
	c.Title = "changed"

	assert.Equal(t, "a", b.Title)
}
