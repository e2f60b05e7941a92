package yt

// YouTube transcript pipeline, split across files by responsibility:
//   videoid.go    — video reference normalization (URL or bare ID)
//   params.go     — get_transcript params blob encoder
//   bootstrap.go  — watch page scrape (visitor token, client version, page metadata)
//   client.go     — Innertube /get_transcript POST client
//   decode.go     — response envelope decoding (web and mobile segment shapes)
//   filter.go     — sponsor-chapter caption filtering
//   format.go     — plain / timestamped text rendering
//   transcript.go — pipeline orchestration
