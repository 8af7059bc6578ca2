// Package responder serves static files and the root HTML document with a
// runtime configuration block injected.
//
// # Root document
//
// GET or HEAD on "/" or the index path (default "/index.html") reads the
// document fresh from the serving root and inserts
//
//	<script>
//	// Environment variables injected by server
//	window.VITE_FIREBASE_API_KEY = "...";
//	window.VITE_FIREBASE_PROJECT_ID = "...";
//	window.VITE_FIREBASE_APP_ID = "...";
//	</script>
//
// immediately before the first "</head>". A document without the marker is
// served unmodified. The response is 200 with Content-Type text/html and a
// Content-Length equal to the body size. If the document cannot be read
// (missing, a directory, unreadable, not UTF-8) the error is logged and the
// request is served as a plain static file instead.
//
// # Everything else
//
//   - GET/HEAD: Fiber's filesystem middleware over the serving root.
//   - OPTIONS: 204, for CORS preflight. A plain file server answers
//     OPTIONS with 501; here it succeeds so browser preflights get the
//     CORS headers on a 2xx response.
//   - Other methods: 501.
package responder
