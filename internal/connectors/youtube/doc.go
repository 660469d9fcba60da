// Package youtube talks to the YouTube Data and YouTube Analytics APIs.
//
// Executor performs single authenticated GET requests and classifies the
// response. Catalog builds the fixed set of channel queries on top of an
// authenticated fetcher and decodes the responses into domain types.
//
// Response bodies are decoded with the generated types from
// google.golang.org/api/youtube/v3 and google.golang.org/api/youtubeanalytics/v2;
// requests are made directly so the fetcher controls authorisation and retry.
package youtube
