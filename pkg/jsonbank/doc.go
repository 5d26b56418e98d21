// Package jsonbank is a client for the JsonBank JSON document storage service.
//
// # Overview
//
// The client authenticates with a public/private API key pair, reads public and
// own documents, creates/updates/deletes documents and folders, and proxies reads
// of public GitHub-hosted JSON files.
//
// # Configuration Example
//
//	client := jsonbank.New(&jsonbank.Config{
//	  Host: "https://api.jsonbank.io",
//	  Keys: jsonbank.Keys{
//	    Public:  os.Getenv("JSONBANK_PUBLIC_KEY"),
//	    Private: os.Getenv("JSONBANK_PRIVATE_KEY"),
//	  },
//	})
//
// # Endpoints
//
// Two base URLs are derived from the configured host:
//   - public: {host}
//   - v1:     {host}/v1
//
// Public (no key):
//   - GET {public}/f/:idOrPath
//   - GET {public}/meta/f/:idOrPath
//   - GET {public}/gh/:path
//
// Own documents and folders:
//   - POST   {v1}/authenticate                 (public key)
//   - GET    {v1}/file/:idOrPath               (public key)
//   - GET    {v1}/meta/file/:idOrPath          (public key)
//   - GET    {v1}/folder/:idOrPath             (public key)
//   - POST   {v1}/file/:idOrPath               (private key)
//   - DELETE {v1}/file/:idOrPath               (private key)
//   - POST   {v1}/project/:project/document    (private key)
//   - POST   {v1}/project/:project/folder      (private key)
//
// # Error Handling
//
// Every operation returns a *Error carrying a code and a message. Codes reported
// by the server (for example "name.exists" or "notFound") are passed through
// verbatim. Client-side codes are exported as Code* constants.
//
// Two operations recover from server errors on their own:
//   - DeleteDocument treats "notFound" as an already deleted document.
//   - CreateDocumentIfNotExists and CreateFolderIfNotExists fetch the existing
//     resource when the server reports "name.exists".
//
// No request is ever retried.
//
// # Security
//
//   - Keys are sent in the jsb-pub-key and jsb-prv-key headers
//   - Keys are never logged or serialized to JSON
package jsonbank
