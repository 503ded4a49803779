/*
Package art is responsible for finding cover art for albums over the internet.

Albums are MusicBrainz release groups. For every one of them the Cover Art Archive
is asked for its list of images and a single one is selected: the first image marked
as "front" or the first image when none is marked. Only the URL of the image is
returned. Release groups without cover art are common and are not an error.

The image itself may also be downloaded for serving it from our own HTTP server.

The following APIs are used to achieve this packages' objective:

  - Cover Art Archive: https://musicbrainz.org/doc/Cover_Art_Archive/API
*/
package art
