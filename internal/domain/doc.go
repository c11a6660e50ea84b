// Package domain contains the core business entities of the catalog:
// products and their images, together with the validation rules they
// must satisfy independent of storage or transport.
package domain
