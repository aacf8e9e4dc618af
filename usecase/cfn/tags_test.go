package cfn

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagsToMap(t *testing.T) {
	t.Run("drops tags without a value", func(t *testing.T) {
		tags := []Tag{{Key: "A", Value: "1"}, {Key: "B"}, {Key: "C", Value: "3"}}

		assert.Equal(t, map[string]string{"A": "1", "C": "3"}, TagsToMap(tags))
	})

	t.Run("last value wins for a repeated key", func(t *testing.T) {
		tags := []Tag{{Key: "A", Value: "1"}, {Key: "A", Value: "2"}}

		assert.Equal(t, map[string]string{"A": "2"}, TagsToMap(tags))
	})

	t.Run("nil is an empty map", func(t *testing.T) {
		assert.Empty(t, TagsToMap(nil))
	})
}

func TestTagsFromMap(t *testing.T) {
	assert.Equal(t, []Tag{{Key: "A", Value: "1"}, {Key: "B", Value: "2"}}, TagsFromMap(map[string]string{"B": "2", "A": "1"}))
	assert.Nil(t, TagsFromMap(map[string]string{}))
}

func TestMergeTags(t *testing.T) {
	merged := MergeTags(
		map[string]string{"stack": "s", "team": "stack-team"},
		nil,
		map[string]string{"team": "resource-team", "empty": ""},
	)

	assert.Equal(t, map[string]string{"stack": "s", "team": "resource-team"}, merged)
}

func TestTagDiff(t *testing.T) {
	previous := map[string]string{"A": "1", "B": "2"}
	desired := map[string]string{"A": "1", "C": "3"}

	assert.True(t, ShouldUpdateTags(previous, desired))
	assert.Equal(t, map[string]string{"C": "3"}, TagsToAdd(previous, desired))
	assert.Equal(t, []string{"B"}, TagsToRemove(previous, desired))

	t.Run("changed values are added again", func(t *testing.T) {
		assert.Equal(t, map[string]string{"A": "9"}, TagsToAdd(previous, map[string]string{"A": "9", "B": "2"}))
	})

	t.Run("equal maps need no update", func(t *testing.T) {
		assert.False(t, ShouldUpdateTags(map[string]string{"A": "1", "B": "2"}, map[string]string{"B": "2", "A": "1"}))
		assert.Empty(t, TagsToAdd(previous, previous))
		assert.Empty(t, TagsToRemove(previous, previous))
	})
}

func randomTags(r *rand.Rand) []Tag {
	n := r.Intn(8)
	tags := make([]Tag, 0, n)

	for i := 0; i < n; i++ {
		value := ""
		if r.Intn(4) > 0 {
			value = fmt.Sprintf("v%d", r.Intn(3))
		}
		tags = append(tags, Tag{Key: fmt.Sprintf("k%d", r.Intn(6)), Value: value})
	}

	return tags
}

// 任意のタグの組み合わせで差分の性質が成り立つ事を確認する
func TestTagDiffProperties(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 500; i++ {
		previous := TagsToMap(randomTags(r))
		desired := TagsToMap(randomTags(r))

		toAdd := TagsToAdd(previous, desired)
		toRemove := TagsToRemove(previous, desired)

		// previous with removals and additions applied is desired
		applied := MergeTags(previous, toAdd)
		for _, key := range toRemove {
			_, inDesired := desired[key]
			assert.False(t, inDesired, "removed key %s is still desired", key)
			delete(applied, key)
		}
		assert.Equal(t, desired, applied)

		assert.Equal(t, len(toAdd) == 0 && len(toRemove) == 0, !ShouldUpdateTags(previous, desired))
	}
}

func TestTagsRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(2))

	for i := 0; i < 500; i++ {
		tags := randomTags(r)

		expected := map[string]string{}
		for _, tag := range tags {
			if tag.Value != "" {
				expected[tag.Key] = tag.Value
			}
		}

		assert.Equal(t, expected, TagsToMap(TagsFromMap(TagsToMap(tags))))
		for _, tag := range TagsFromMap(TagsToMap(tags)) {
			assert.NotEmpty(t, tag.Value)
		}
	}
}
