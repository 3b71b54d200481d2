//go:build !hideadmin

package buildflags

// Admin is only declared without the hideadmin tag.
const Admin Role = 10
