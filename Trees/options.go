package Trees

import "github.com/sirupsen/logrus"

type config struct {
	log   logrus.FieldLogger
	limit uint64
}

// Option configures a tree at construction.
type Option func(*config)

// WithLogger traces every fixup case at debug level. Without it the tree logs nothing.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		c.log = l
	}
}

// WithLimit caps the number of live nodes; inserts beyond it fail with ErrAllocation.
// The default is the largest count the index type can address.
func WithLimit(n uint64) Option {
	return func(c *config) {
		c.limit = n
	}
}

func makeConfig(opts []Option) *config {
	c := new(config)
	for _, o := range opts {
		o(c)
	}
	return c
}
