// Package level implements level rules, the level expression parser and
// hierarchical rule resolution.
//
// A level expression lists rules separated by the level separator
// (default ","). Each rule is a level name optionally followed by "@"
// and marker names separated by the marker separator (default ":"):
//
//	warn,info@iAmMarker,trace@important:notify-admin
//
// A call is enabled when any rule matches (OR semantics). The example
// enables every WARN and ERROR call, INFO calls tagged iAmMarker and
// TRACE calls tagged important or notify-admin.
//
// Resolver walks logger name ancestors ("org.test.Class", "org.test",
// "org") and uses the first configured one. Rule sets are never merged
// across ancestors.
package level
