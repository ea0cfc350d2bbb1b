// Package kernel provides core domain primitives shared by the whole model:
// UUID identities and grid Locations. Both are immutable value objects,
// comparable and safe for concurrent use.
package kernel
