// Package navstrip removes redundant <nav> elements from inside
// <header class="site-header"> blocks across a tree of HTML files.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., regexp/, html/, goquery/, fs/).
package navstrip
