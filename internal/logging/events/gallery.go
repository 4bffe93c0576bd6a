package events

import "github.com/atomicstack/lookbook/internal/logging"

type GalleryTracer struct{}

var Gallery = GalleryTracer{}

func (GalleryTracer) Advance(from, to int, id string) {
	logging.Trace("gallery.advance", map[string]interface{}{"from": from, "to": to, "id": id})
}

func (GalleryTracer) Select(from, to int, id string) {
	logging.Trace("gallery.select", map[string]interface{}{"from": from, "to": to, "id": id})
}

func (GalleryTracer) SelectIgnored(requested, size int) {
	logging.Trace("gallery.select.ignored", map[string]interface{}{"requested": requested, "size": size})
}
