/*
Package ref implements the ownership handle pools hand out: a clonable,
reference-counted reference to a single storage cell. Cloning a handle shares
the cell; a cell lives as long as its longest-held handle. A holder which turns
out to be the unique owner may reclaim the cell's value without copying it
(Unwrap), which is what makes pooled copy-on-write cheap for unshared nodes.

The counting strategy is a whole-build decision, not a per-handle one: builds
with the `threadsafe` tag count atomically, all other builds count with a plain
integer. There is no runtime switch.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ref
