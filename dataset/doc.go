// Package dataset reads field datasets from local files and object storage.
//
// A dataset is a comma separated text file with one field per line: the field
// name followed by one amount per period.
//
//	AAAAA,2948.30,1400.10,5875.86
//	BBBBB,698.30,4846.14,3322.92
//
// Blank lines and whitespace around cells are ignored. A line holding only a
// name is a field with no amounts. Files ending in .zst or .lz4 (or starting
// with the matching frame magic) are decompressed transparently.
//
// Sources are plain paths or URIs:
//
//	./payslips/q1.csv
//	s3://bucket/payslips/q1.csv.zst
//	minio://bucket/payslips/q1.csv
package dataset
