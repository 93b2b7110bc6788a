// Package attrpath parses attribute expressions and resolves them against
// form records.
//
// An attribute expression names a model attribute, optionally with a
// leading index for tabular input and a trailing index into the value:
//
//	title          the title attribute
//	[0]title       title of row 0 in a tabular form
//	tags[]         a multi-value input
//	author.name    a nested attribute
//	items[2][sku]  an element of the items attribute
//
// InputName and InputID derive the name and id attributes of the bound
// input; Value reads the bound value, substituting primary keys for
// Identifier values.
package attrpath
