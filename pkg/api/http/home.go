package http

// homePage is the interactive demo page. Project name and domain are
// filled in at render time from the server configuration.
const homePage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.ProjectName}} - NSM Go Example</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', system-ui, sans-serif;
            max-width: 900px;
            margin: 0 auto;
            padding: 2rem;
            line-height: 1.6;
            color: #374151;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            min-height: 100vh;
        }
        .container {
            background: white;
            border-radius: 16px;
            padding: 3rem;
            box-shadow: 0 20px 25px -5px rgba(0, 0, 0, 0.1);
        }
        .header { text-align: center; margin-bottom: 2rem; }
        .title { font-size: 2.5rem; font-weight: 700; color: #1f2937; margin-bottom: 0.5rem; }
        .subtitle { color: #6b7280; font-size: 1.1rem; }
        .badge {
            display: inline-block;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            padding: 0.25rem 0.75rem;
            border-radius: 12px;
            font-size: 0.8rem;
            font-weight: 600;
            margin: 0.5rem;
        }
        .feature-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(220px, 1fr));
            gap: 1.5rem;
            margin: 2rem 0;
        }
        .feature {
            background: #f8fafc;
            padding: 1.5rem;
            border-radius: 12px;
            border: 1px solid #e2e8f0;
        }
        .feature h3 { margin: 0 0 0.5rem 0; color: #374151; font-size: 1.1rem; }
        .feature p { margin: 0; color: #6b7280; font-size: 0.9rem; }
        .api-section {
            background: #1f2937;
            color: white;
            padding: 2rem;
            border-radius: 12px;
            margin: 2rem 0;
        }
        .endpoint {
            background: rgba(255, 255, 255, 0.1);
            padding: 1rem;
            border-radius: 8px;
            margin: 1rem 0;
            font-family: 'SF Mono', Monaco, monospace;
            font-size: 0.9rem;
        }
        .interactive-section {
            background: #f8fafc;
            padding: 2rem;
            border-radius: 12px;
            margin: 2rem 0;
            border: 1px solid #e2e8f0;
        }
        .form-group { margin-bottom: 1rem; }
        .form-group label { display: block; margin-bottom: 0.5rem; font-weight: 600; }
        .form-group input {
            width: 100%;
            padding: 0.75rem;
            border: 2px solid #e2e8f0;
            border-radius: 8px;
            font-size: 1rem;
            box-sizing: border-box;
        }
        .form-group button {
            padding: 0.75rem 1.5rem;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            border: none;
            border-radius: 8px;
            font-weight: 600;
            cursor: pointer;
        }
        .response {
            margin-top: 1rem;
            padding: 1rem;
            background: #f0f9ff;
            border-radius: 8px;
            border-left: 4px solid #0ea5e9;
            font-family: 'SF Mono', Monaco, monospace;
            font-size: 0.9rem;
            white-space: pre-wrap;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1 class="title">🚀 {{.ProjectName}}</h1>
            <p class="subtitle">Go Web Server with NSM</p>
            <span class="badge">⚡ Go + Gin</span>
            <span class="badge">🚀 NSM Enabled</span>
        </div>

        <div class="feature-grid">
            <div class="feature">
                <h3>🔧 Development Ready</h3>
                <p>Automatic port configuration via .nsm-ports.json</p>
            </div>
            <div class="feature">
                <h3>🌍 Custom Domain</h3>
                <p>Running on {{.Domain}} with HTTPS</p>
            </div>
            <div class="feature">
                <h3>⚡ Fast Build</h3>
                <p>Go's lightning-fast compilation</p>
            </div>
            <div class="feature">
                <h3>📡 Live Feed</h3>
                <p>Processed messages streamed over WebSocket</p>
            </div>
        </div>

        <div class="interactive-section">
            <h3>🧪 Interactive API Demo</h3>
            <p>Test the message endpoint:</p>
            <div class="form-group">
                <label for="messageInput">Message:</label>
                <input type="text" id="messageInput" placeholder="Enter your message..." value="Hello from Go!">
            </div>
            <div class="form-group">
                <label for="authorInput">Author:</label>
                <input type="text" id="authorInput" placeholder="Your name..." value="Go Developer">
            </div>
            <div class="form-group">
                <button onclick="testMessage()">Send Message</button>
            </div>
            <div id="messageResponse" class="response" style="display: none;"></div>
        </div>

        <div class="api-section">
            <h3>🔗 API Endpoints</h3>
            <div class="endpoint">GET /api/info - Application information</div>
            <div class="endpoint">GET /api/health - Health check</div>
            <div class="endpoint">POST /api/message - Process message (JSON)</div>
            <div class="endpoint">GET /api/messages - Recent message history</div>
            <div class="endpoint">GET /api/messages/ws - Live message feed (WebSocket)</div>
            <div class="endpoint">GET / - This page</div>
        </div>
    </div>

    <script>
        async function testMessage() {
            const messageInput = document.getElementById('messageInput');
            const authorInput = document.getElementById('authorInput');
            const responseDiv = document.getElementById('messageResponse');

            try {
                const response = await fetch('/api/message', {
                    method: 'POST',
                    headers: { 'Content-Type': 'application/json' },
                    body: JSON.stringify({
                        message: messageInput.value,
                        author: authorInput.value
                    })
                });

                const data = await response.json();
                responseDiv.textContent = JSON.stringify(data, null, 2);
                responseDiv.style.display = 'block';
            } catch (error) {
                responseDiv.textContent = 'Error: ' + error.message;
                responseDiv.style.display = 'block';
            }
        }

        document.getElementById('messageInput').addEventListener('keypress', function(e) {
            if (e.key === 'Enter') {
                testMessage();
            }
        });
    </script>
</body>
</html>
`
