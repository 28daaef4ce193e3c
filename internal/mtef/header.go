package mtef

// header carries the fixed preamble that precedes every MTEF record
// stream, common to versions 3 and 5.
type header struct {
	Version    uint8
	Platform   uint8
	Product    uint8
	ProductVer uint8
	ProductSub uint8

	// AppName and InlineOpts are only present in version 5 streams.
	AppName    []byte
	InlineOpts uint8
}

// readHeader parses the MTEF preamble. Version 3 streams stop after the
// five fixed bytes; version 5 streams continue with a NUL-terminated
// application name and one options byte.
func readHeader(r *byteReader) *header {
	h := &header{
		Version:    r.u8(),
		Platform:   r.u8(),
		Product:    r.u8(),
		ProductVer: r.u8(),
		ProductSub: r.u8(),
	}
	if !r.ok() {
		return h
	}
	if h.Version != 3 {
		h.AppName = r.cstring()
		h.InlineOpts = r.u8()
	}
	return h
}
