// Package docgate provides an in-process Go client for docgate: create
// Elasticsearch indices, write JSON documents and read them back, with the
// same rules and errors as the HTTP gateway.
//
//	client, err := docgate.New(ctx, docgate.WithElasticsearch("localhost", 9200))
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	_, _ = client.EnsureIndex(ctx, "books")
//	id, _ := client.Write(ctx, "books", map[string]any{"title": "Dune"})
//	res, _ := client.Read(ctx, "books", 10)
//
// Errors can be matched with errors.Is against ErrIndexNotFound,
// ErrInvalidRequest and ErrStoreUnavailable.
package docgate
