package httpclientx

import "testing"

func TestEndpoint(t *testing.T) {
	t.Run("the constructor only assigns the URL", func(t *testing.T) {
		epnt := NewEndpoint("https://www.example.com/")
		if epnt.URL != "https://www.example.com/" {
			t.Fatal("unexpected URL")
		}
		if epnt.Host != "" {
			t.Fatal("unexpected host")
		}
	})

	t.Run("we can optionally get a copy with an assigned host header", func(t *testing.T) {
		epnt := NewEndpoint("https://www.example.com/").WithHostOverride("www.cloudfront.com")
		if epnt.URL != "https://www.example.com/" {
			t.Fatal("unexpected URL")
		}
		if epnt.Host != "www.cloudfront.com" {
			t.Fatal("unexpected host")
		}
	})
}
