// Package s3 provides an S3 implementation of the blobstore.Store interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("payslips/"),
//	    s3.WithRegion("eu-central-1"),
//	)
//	data, err := blobstore.ReadAll(ctx, store, "2024-q1.csv")
//
// # Features
//
//   - Whole-object downloads through the s3 manager Downloader
//   - Range reads through Open
//   - Automatic pagination for listing
//   - Configurable prefix and endpoint (LocalStack, S3-compatible gateways)
package s3
