// Package attrdoc reads attribute data from YAML and JSON documents.
//
// Documents decode through yaml.Node, so mapping order survives and the
// rendered attributes come out in the order they were written. JSON is
// valid YAML and needs no separate path. Anchors, aliases, merge keys and
// custom tags are rejected with ErrUnsupportedNode and the node position.
package attrdoc
