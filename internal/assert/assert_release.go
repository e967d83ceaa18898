//go:build release

package assert

const Enabled = false

func That(bool, string, ...interface{}) {}
