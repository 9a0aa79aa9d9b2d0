// Package internalcheck holds static-analysis tests enforcing the binding's
// layering rules. It is not intended for external use and the API may change
// without notice.
package internalcheck
