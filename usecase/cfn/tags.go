package cfn

import (
	"maps"
	"sort"
)

// Tag is a key/value label. An empty Value means the tag has no value and is dropped on conversion.
type Tag struct {
	Key   string `json:"Key"`
	Value string `json:"Value,omitempty"`
}

// TagsToMap keeps the last value when a key repeats.
func TagsToMap(tags []Tag) map[string]string {
	tagMap := make(map[string]string, len(tags))

	for _, tag := range tags {
		if tag.Value == "" {
			continue
		}
		tagMap[tag.Key] = tag.Value
	}

	return tagMap
}

// TagsFromMap returns the tags ordered by key. Order carries no meaning, it only keeps output stable.
func TagsFromMap(tagMap map[string]string) []Tag {
	if len(tagMap) == 0 {
		return nil
	}

	tags := make([]Tag, 0, len(tagMap))
	for key, value := range tagMap {
		if value == "" {
			continue
		}
		tags = append(tags, Tag{Key: key, Value: value})
	}

	sort.Slice(tags, func(i, j int) bool {
		return tags[i].Key < tags[j].Key
	})

	return tags
}

// MergeTags folds tag maps from lowest to highest precedence, e.g. stack tags then resource tags.
func MergeTags(tagMaps ...map[string]string) map[string]string {
	merged := make(map[string]string)

	for _, tagMap := range tagMaps {
		for key, value := range tagMap {
			if value == "" {
				continue
			}
			merged[key] = value
		}
	}

	return merged
}

func ShouldUpdateTags(previousTags map[string]string, desiredTags map[string]string) bool {
	return !maps.Equal(previousTags, desiredTags)
}

// TagsToAdd returns the desired tags that are new or whose value changed.
func TagsToAdd(previousTags map[string]string, desiredTags map[string]string) map[string]string {
	tagsToAdd := make(map[string]string)

	for key, value := range desiredTags {
		previousValue, ok := previousTags[key]
		if !ok || previousValue != value {
			tagsToAdd[key] = value
		}
	}

	return tagsToAdd
}

// TagsToRemove returns the previous tag keys that are no longer desired, sorted.
func TagsToRemove(previousTags map[string]string, desiredTags map[string]string) []string {
	tagsToRemove := make([]string, 0)

	for key := range previousTags {
		if _, ok := desiredTags[key]; !ok {
			tagsToRemove = append(tagsToRemove, key)
		}
	}

	sort.Strings(tagsToRemove)

	return tagsToRemove
}
