// Package torrents wraps the transmission download manager and the torrent
// search API.
//
// The listing printed by `transmission-remote -l` is a column-aligned report
// meant for terminals. Parser reads it leniently: header, summary and any
// other line that does not match the full row layout are dropped.
//
// # HTTP Endpoints
//
//   - GET /torrents : Current downloads.
//   - GET /torrents/search?site=&query= : Proxy to the search API.
//   - POST /torrents/download : Add {"magnetUri": "..."}.
package torrents
