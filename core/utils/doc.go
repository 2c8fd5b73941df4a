// Package utils provides common utility functions for the inventory-viewer application.
// It includes the value coercions shared by the field accessor and the mapping registry,
// and the slug prettifier used whenever a dictionary does not supply an explicit name.
package utils
