package rocketmodel

// CargoItem is an opaque-to-the-kernel cargo entry (§3: "opaque to the
// core"). The kernel only needs to track identity and count; mission
// bookkeeping, inventory UI, and credits live outside the kernel
// (§1 Out of scope).
type CargoItem struct {
	Type     string
	Quantity int
}
