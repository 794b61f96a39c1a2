// Package publish writes rendered pages to a backing store.
//
// Two backends ship with the package: DiskStore writes below a local
// directory and S3Store uploads objects with aws-sdk-go-v2. Both accept the
// same slash-separated keys; CleanKey rejects keys that are absolute or
// contain ".." segments, and adds ".html" to keys without an extension.
//
//	store, err := publish.Open(ctx, publish.Config{Backend: "disk", Dir: "public"})
//	if err != nil {
//	    return err
//	}
//	loc, err := store.Put(ctx, "blog/hello", html) // public/blog/hello.html
//
// Select S3 with Backend "s3" and a Bucket. Endpoint and UsePathStyle point
// the client at S3-compatible services.
package publish
