//go:build fb_nobounds

package fb

const boundsCheck = false
