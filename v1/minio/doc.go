// Package minio verifies backup artifacts in an S3-compatible bucket.
//
// Weaviate's s3 backup backend writes backup data into a configured bucket.
// This package connects to that bucket, ensures it exists, and confirms that
// a completed backup actually produced objects under its prefix.
//
// Basic Usage:
//
//	client, err := minio.NewClient(minio.NewConfig(), log)
//	if err != nil {
//		log.Fatal("failed to create minio client", err, nil)
//	}
//
//	artifacts, err := client.VerifyBackup(ctx, "verify-backup-1")
//	if err != nil {
//		log.Error("backup left no artifacts", err, nil)
//	}
package minio
