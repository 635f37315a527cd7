package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeMessages_DeduplicatesById(t *testing.T) {
	local := []Message{
		{ID: "m1", Content: "hello"},
		{ID: "m2", Content: "world"},
	}

	// The sender's own optimistic insert comes back as a change event.
	merged := MergeMessages(local, Message{ID: "m2", Content: "world"}, Message{ID: "m3", Content: "!"})

	assert.Len(t, merged, 3)
	assert.Equal(t, "m1", merged[0].ID)
	assert.Equal(t, "m2", merged[1].ID)
	assert.Equal(t, "m3", merged[2].ID)
}

func TestMergeMessages_EmptyLocal(t *testing.T) {
	merged := MergeMessages(nil, Message{ID: "m1"})
	assert.Len(t, merged, 1)
}

func TestMergeMessages_DuplicateIncoming(t *testing.T) {
	merged := MergeMessages(nil, Message{ID: "m1"}, Message{ID: "m1"})
	assert.Len(t, merged, 1)
}
