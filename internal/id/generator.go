package id

import "github.com/segmentio/ksuid"

// ProductPrefix is prepended to every product id.
const ProductPrefix = "prod_"

// GenerateIDWithPrefix creates a new KSUID with the given prefix.
// KSUIDs are time-ordered, collision-resistant, and URL-safe.
//
// Format: <prefix><27-char-ksuid>
// Example: prod_2ArTLVPddDx8vZk7CqEbiYp1
func GenerateIDWithPrefix(prefix string) string {
	return prefix + ksuid.New().String()
}

// Generator hands out ids that are never repeated for its lifetime,
// even if the underlying source would produce a duplicate.
type Generator struct {
	prefix string
	next   func() string
	issued map[string]struct{}
}

func NewGenerator(prefix string) *Generator {
	return &Generator{
		prefix: prefix,
		next:   func() string { return GenerateIDWithPrefix(prefix) },
		issued: make(map[string]struct{}),
	}
}

// NewGeneratorFunc uses next as the id source instead of KSUID.
func NewGeneratorFunc(next func() string) *Generator {
	return &Generator{next: next, issued: make(map[string]struct{})}
}

// Reserve marks ids as taken so New never returns them.
func (g *Generator) Reserve(ids ...string) {
	for _, id := range ids {
		g.issued[id] = struct{}{}
	}
}

// New returns an id not previously issued or reserved.
func (g *Generator) New() string {
	for {
		id := g.next()
		if _, taken := g.issued[id]; taken {
			continue
		}
		g.issued[id] = struct{}{}
		return id
	}
}
