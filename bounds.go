//go:build !fb_nobounds

package fb

// boundsCheck makes Framebuffer accessors ignore out-of-range coordinates.
// Build with -tags fb_nobounds to compile the checks out.
const boundsCheck = true
