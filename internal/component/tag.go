package component

// CategoryTag is the bucket key for freeform markers.
const CategoryTag = "tag"

// Tag is a freeform key/value marker, the smallest useful component.
// Scripts and prefabs use it to label entities for later lookup.
type Tag struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (Tag) Category() string { return CategoryTag }
