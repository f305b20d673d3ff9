package cli

import (
	"fmt"
	"html"
	"strings"

	"github.com/tessella/tessella/pkg/pattern"
)

// viewerPage builds the animated preview page. The pattern text is escaped
// before the poem markers are rewritten into highlight spans, mirroring what
// the client-side formatter does for fetched patterns.
func viewerPage(group, text string) string {
	escaped := html.EscapeString(text)
	escaped = strings.ReplaceAll(escaped, html.EscapeString(pattern.MarkerOpen), `<span class="poem">`)
	escaped = strings.ReplaceAll(escaped, html.EscapeString(pattern.MarkerClose), `</span>`)
	return fmt.Sprintf(viewerTemplate, html.EscapeString(group), escaped)
}

const viewerTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>tessella</title>
<style>
body {
  background-color: #fff;
  color: #000;
  font-family: monospace;
  display: flex;
  flex-direction: column;
  justify-content: center;
  align-items: center;
  height: 100vh;
  margin: 0;
  padding: 20px;
}
.pattern-container {
  background-color: #fff;
  padding: 20px;
  border-radius: 5px;
  margin-bottom: 20px;
  white-space: pre;
  line-height: 1;
  font-size: 14px;
  overflow: hidden;
  border: 1px solid #000;
}
.controls { margin-top: 20px; }
.pattern-info { margin-bottom: 10px; font-size: 16px; }
button {
  background-color: #000;
  color: #fff;
  border: none;
  padding: 10px 20px;
  border-radius: 5px;
  cursor: pointer;
  margin-right: 10px;
}
button:hover { background-color: #333; }
.poem { background-color: #ff0; color: #000; }
</style>
</head>
<body>
<div class="pattern-info">Wallpaper Group: <span id="group-name">%s</span></div>
<div class="pattern-container" id="pattern">%s</div>
<div class="controls">
  <button id="new-pattern">Generate New Pattern</button>
  <button id="toggle-animation">Start Animation</button>
</div>
<script>
const patternElement = document.getElementById('pattern');
const groupNameElement = document.getElementById('group-name');
const newPatternButton = document.getElementById('new-pattern');
const toggleAnimationButton = document.getElementById('toggle-animation');

let animationInterval = null;

function formatPattern(text) {
  return text
    .replace(/&/g, '&amp;')
    .replace(/</g, '&lt;')
    .replace(/>/g, '&gt;')
    .replace(/&lt;poem&gt;/g, '<span class="poem">')
    .replace(/&lt;\/poem&gt;/g, '</span>');
}

async function fetchNewPattern() {
  try {
    const response = await fetch('/pattern');
    const data = await response.json();
    patternElement.innerHTML = formatPattern(data.pattern);
    groupNameElement.textContent = data.group;
  } catch (error) {
    console.error('Error fetching pattern:', error);
  }
}

newPatternButton.addEventListener('click', fetchNewPattern);

toggleAnimationButton.addEventListener('click', () => {
  if (animationInterval) {
    clearInterval(animationInterval);
    animationInterval = null;
    toggleAnimationButton.textContent = 'Start Animation';
  } else {
    animationInterval = setInterval(fetchNewPattern, 3000);
    toggleAnimationButton.textContent = 'Stop Animation';
  }
});
</script>
</body>
</html>
`
