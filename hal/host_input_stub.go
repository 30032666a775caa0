//go:build !tinygo && !cgo

package hal

// Without the window backend there is no device to poll. Headless runs feed
// the pointer through HeadlessConfig.Script.

func (k *hostKeyboard) poll() {}

func (p *hostPointer) poll() {}
