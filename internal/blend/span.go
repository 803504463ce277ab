package blend

// Span composites a solid premultiplied color into a row of premultiplied
// RGBA pixels. cov holds one coverage byte per pixel; a pixel with coverage
// c ends up as lerp(dst, mode(src, dst), c), so zero coverage leaves the
// destination untouched.
//
// len(dst) must be at least 4*len(cov).
func Span(dst, cov []byte, sr, sg, sb, sa byte, mode BlendMode) {
	fn := GetBlendFunc(mode)
	for i, c := range cov {
		if c == 0 {
			continue
		}
		p := dst[4*i : 4*i+4 : 4*i+4]
		r, g, b, a := fn(sr, sg, sb, sa, p[0], p[1], p[2], p[3])
		if c == 255 {
			p[0], p[1], p[2], p[3] = r, g, b, a
			continue
		}
		p[0] = lerp255(p[0], r, c)
		p[1] = lerp255(p[1], g, c)
		p[2] = lerp255(p[2], b, c)
		p[3] = lerp255(p[3], a, c)
	}
}

// Fill sets every pixel of a premultiplied RGBA row to the given color.
func Fill(dst []byte, r, g, b, a byte) {
	for i := 0; i+3 < len(dst); i += 4 {
		dst[i], dst[i+1], dst[i+2], dst[i+3] = r, g, b, a
	}
}
