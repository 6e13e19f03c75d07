// Package digest fingerprints a generated project tree.
//
// The digest is SHA-256 over canonical JSON (RFC 8785 key ordering, NFC
// normalized strings, no HTML escaping) of an object mapping each file's
// slash path to the SHA-256 of its content. Two trees with the same digest
// hold the same files with the same bytes, wherever they live on disk.
package digest
