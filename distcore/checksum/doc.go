// Package checksum classifies opaque checksum strings by text encoding and
// digest algorithm without trusting caller-supplied metadata.
//
// Classification inspects only the string's character class and length; it
// never decodes or hashes content and never fails.
package checksum
