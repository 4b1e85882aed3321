// Package generator issues a batch of camera session identifiers.
//
// A run is a single linear pass:
//
//	validate → generate → check batch → scan history → check collisions → write
//
// The first failing stage ends the run; nothing is retried and nothing is
// written unless every check passed. Typical use:
//
//	srv := generator.New(generator.WithListener(listener))
//	result, err := srv.Run(ctx, &generator.Request{Count: 5, Category: category.Hornet, Directory: "camera-uuids"})
//
// Runs against the same directory must not overlap: the history snapshot is
// not locked between scanning and writing.
package generator
