// Package minio provides a blobstore.Store implementation using the MinIO client.
//
// MinIO is a high-performance, S3-compatible object storage system. This package
// uses the official MinIO Go client library and works with other S3-compatible
// storage systems like Ceph, SeaweedFS, and Garage.
//
// # Basic Usage
//
//	client, err := minio.Dial(minio.Config{
//	    Endpoint:  "localhost:9000",
//	    AccessKey: "minioadmin",
//	    SecretKey: "minioadmin",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := minio.NewStore(client, "my-bucket", "payslips/")
//	data, err := blobstore.ReadAll(ctx, store, "2024-q1.csv")
package minio
