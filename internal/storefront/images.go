package storefront

const DefaultImage = "https://images.unsplash.com/photo-1563013544-824ae1b704d3?w=400&h=300&fit=crop&crop=center"

var categoryImages = map[string]string{
	"Electronics": "https://images.unsplash.com/photo-1498049794561-7780e7231661?w=400&h=300&fit=crop&crop=center",
	"Appliances":  "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?w=400&h=300&fit=crop&crop=center",
	"Accessories": "https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=400&h=300&fit=crop&crop=center",
	"Clothing":    "https://images.unsplash.com/photo-1445205170230-053b83016050?w=400&h=300&fit=crop&crop=center",
	"Books":       "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=400&h=300&fit=crop&crop=center",
	"Sports":      "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=400&h=300&fit=crop&crop=center",
}

// ImageFor maps a category to its illustration. Matching is exact; anything
// unmapped gets DefaultImage.
func ImageFor(category string) string {
	if img, ok := categoryImages[category]; ok {
		return img
	}
	return DefaultImage
}
