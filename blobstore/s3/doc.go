// Package s3 provides an S3 implementation of the blobstore.Store interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("analyses/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
// Credentials and region come from the default AWS configuration chain.
//
// # Features
//
//   - Multipart uploads with CRC32 checksums for large analyses
//   - Automatic pagination for listing
//   - Configurable prefix to share one bucket between runs
package s3
