// Package fs is the file system seam of blobstore.LocalStore.
//
// [FileSystem] covers exactly what an atomic document write and a directory
// listing need: read, create a temporary file, sync, rename, remove, list.
// [LocalFS] forwards to package os and is the [Default].
//
// [FaultyFS] wraps another FileSystem and fails writes, syncs, closes or
// renames of files whose base name matches a rule:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule("_analyzed.json", fs.Fault{FailAfterBytes: -1, FailOnSync: true})
//	store := blobstore.NewLocalStoreFS(dir, ffs)
//
// The interfaces take no context.Context; callers check cancellation
// between operations.
package fs
