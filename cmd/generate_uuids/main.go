// Command generate_uuids issues a batch of camera session identifiers that
// collide with none recorded before.
//
//	generate_uuids <count> <hyrax | bagheera | hornet | bumblebee | coati> [<directory>]
//
// New identifiers are written to <directory>/<category>_<YYYY>_<MM>_<DD>.txt,
// where directory defaults to ./camera-uuids. Run one instance at a time per
// directory.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
