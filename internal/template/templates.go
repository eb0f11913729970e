package template

// The two variants share the same section structure (greeting, trial
// reassurance, getting-started box, feature cards, pricing call-to-action,
// sign-off, footer) and differ in accent colour, copy, and feature list.
// All styles are inline: email clients strip <style> blocks and never load
// external stylesheets.

const electricianHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Your Elec-Mate account is waiting for you</title>
</head>
<body style="margin:0;padding:0;background-color:#f4f5f7;font-family:Arial,Helvetica,sans-serif;">
<table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="background-color:#f4f5f7;">
<tr><td align="center" style="padding:24px 12px;">
<table role="presentation" width="600" cellpadding="0" cellspacing="0" style="max-width:600px;width:100%;background-color:#ffffff;border-radius:8px;overflow:hidden;">
<tr><td style="background-color:#111827;padding:28px 32px;">
<span style="color:#f59e0b;font-size:24px;font-weight:bold;">Elec-Mate</span>
<span style="color:#9ca3af;font-size:13px;padding-left:8px;">for UK electricians</span>
</td></tr>
<tr><td style="padding:32px;">
<p style="font-size:18px;color:#111827;margin:0 0 16px;">Hey {{ first_name | default: "there" }},</p>
<p style="font-size:15px;color:#374151;line-height:1.6;margin:0 0 20px;">
You created an Elec-Mate account recently but never started your trial.
Everything is exactly where you left it &mdash; one click and you're back in.
</p>
<table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="margin:0 0 24px;">
<tr><td style="background-color:#fffbeb;border-left:4px solid #f59e0b;padding:16px 20px;border-radius:4px;">
<p style="font-size:14px;color:#92400e;margin:0;line-height:1.5;">
<strong>Your 7-day free trial is still waiting.</strong> No card needed to start,
cancel any time &mdash; you won't be charged a penny during the trial.
</p>
</td></tr>
</table>
<table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="margin:0 0 24px;">
<tr><td style="background-color:#f9fafb;border:1px solid #e5e7eb;padding:20px;border-radius:6px;">
<p style="font-size:14px;color:#111827;font-weight:bold;margin:0 0 8px;">Getting started takes two minutes</p>
<p style="font-size:14px;color:#4b5563;margin:0;line-height:1.6;">
Log in, add your company details once, and your certificates, quotes and
invoices come out branded and ready to send. Most sparks issue their first
certificate the same day.
</p>
</td></tr>
</table>
<p style="font-size:15px;color:#111827;font-weight:bold;margin:0 0 12px;">What you get with Elec-Mate:</p>
<table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="margin:0 0 24px;">
<tr><td style="padding:12px 16px;border:1px solid #e5e7eb;border-radius:6px;">
<p style="font-size:14px;color:#111827;font-weight:bold;margin:0 0 4px;">&#9889; Digital certificates</p>
<p style="font-size:13px;color:#6b7280;margin:0;line-height:1.5;">EICRs, EICs and minor works certs on your phone &mdash; BS 7671 compliant, signed and sent as PDF from site.</p>
</td></tr>
<tr><td style="height:10px;"></td></tr>
<tr><td style="padding:12px 16px;border:1px solid #e5e7eb;border-radius:6px;">
<p style="font-size:14px;color:#111827;font-weight:bold;margin:0 0 4px;">&#128221; Quoting &amp; invoicing</p>
<p style="font-size:13px;color:#6b7280;margin:0;line-height:1.5;">Build a quote in minutes with up-to-date material prices, turn it into an invoice when the job's done.</p>
</td></tr>
<tr><td style="height:10px;"></td></tr>
<tr><td style="padding:12px 16px;border:1px solid #e5e7eb;border-radius:6px;">
<p style="font-size:14px;color:#111827;font-weight:bold;margin:0 0 4px;">&#128247; Board &amp; circuit capture</p>
<p style="font-size:13px;color:#6b7280;margin:0;line-height:1.5;">Photograph a consumer unit and have the circuit schedule filled in for you.</p>
</td></tr>
<tr><td style="height:10px;"></td></tr>
<tr><td style="padding:12px 16px;border:1px solid #e5e7eb;border-radius:6px;">
<p style="font-size:14px;color:#111827;font-weight:bold;margin:0 0 4px;">&#129302; AI assistant</p>
<p style="font-size:13px;color:#6b7280;margin:0;line-height:1.5;">Regs questions, fault-finding help and cable calcs answered on site, referenced to BS 7671.</p>
</td></tr>
<tr><td style="height:10px;"></td></tr>
<tr><td style="padding:12px 16px;border:1px solid #e5e7eb;border-radius:6px;">
<p style="font-size:14px;color:#111827;font-weight:bold;margin:0 0 4px;">&#128188; Job management</p>
<p style="font-size:13px;color:#6b7280;margin:0;line-height:1.5;">Customers, jobs, reminders and paperwork in one place instead of a van full of folders.</p>
</td></tr>
</table>
<table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="margin:0 0 28px;">
<tr><td align="center" style="background-color:#111827;padding:24px;border-radius:6px;">
<p style="font-size:15px;color:#ffffff;margin:0 0 4px;">All of it for <strong style="color:#f59e0b;">&pound;9.99/month</strong> after your free trial</p>
<p style="font-size:13px;color:#9ca3af;margin:0 0 16px;">Less than one socket swap pays for the year.</p>
<a href="https://elec-mate.com/auth?intent=trial" style="display:inline-block;background-color:#f59e0b;color:#111827;font-size:15px;font-weight:bold;text-decoration:none;padding:12px 32px;border-radius:6px;">Start my free trial</a>
</td></tr>
</table>
<p style="font-size:14px;color:#374151;line-height:1.6;margin:0 0 4px;">See you on the tools,</p>
<p style="font-size:14px;color:#374151;line-height:1.6;margin:0;">The Elec-Mate team</p>
</td></tr>
<tr><td style="background-color:#f9fafb;border-top:1px solid #e5e7eb;padding:20px 32px;">
<p style="font-size:12px;color:#9ca3af;margin:0 0 4px;">You're receiving this because you created an Elec-Mate account.</p>
<p style="font-size:12px;color:#9ca3af;margin:0;">&copy; {{ year }} Elec-Mate. All rights reserved.</p>
</td></tr>
</table>
</td></tr>
</table>
</body>
</html>
`

const apprenticeHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Your Elec-Mate account is waiting for you</title>
</head>
<body style="margin:0;padding:0;background-color:#f4f5f7;font-family:Arial,Helvetica,sans-serif;">
<table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="background-color:#f4f5f7;">
<tr><td align="center" style="padding:24px 12px;">
<table role="presentation" width="600" cellpadding="0" cellspacing="0" style="max-width:600px;width:100%;background-color:#ffffff;border-radius:8px;overflow:hidden;">
<tr><td style="background-color:#111827;padding:28px 32px;">
<span style="color:#3b82f6;font-size:24px;font-weight:bold;">Elec-Mate</span>
<span style="color:#9ca3af;font-size:13px;padding-left:8px;">apprentice hub</span>
</td></tr>
<tr><td style="padding:32px;">
<p style="font-size:18px;color:#111827;margin:0 0 16px;">Hey {{ first_name | default: "there" }},</p>
<p style="font-size:15px;color:#374151;line-height:1.6;margin:0 0 20px;">
You signed up for Elec-Mate but never started your trial. Your study tools
are all set up and waiting &mdash; pick up right where you left off.
</p>
<table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="margin:0 0 24px;">
<tr><td style="background-color:#eff6ff;border-left:4px solid #3b82f6;padding:16px 20px;border-radius:4px;">
<p style="font-size:14px;color:#1e40af;margin:0;line-height:1.5;">
<strong>Your 7-day free trial is still waiting.</strong> No card needed to start,
cancel any time &mdash; you won't be charged a penny during the trial.
</p>
</td></tr>
</table>
<table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="margin:0 0 24px;">
<tr><td style="background-color:#f9fafb;border:1px solid #e5e7eb;padding:20px;border-radius:6px;">
<p style="font-size:14px;color:#111827;font-weight:bold;margin:0 0 8px;">Getting started takes two minutes</p>
<p style="font-size:14px;color:#4b5563;margin:0;line-height:1.6;">
Log in, pick your course level, and start with a quick knowledge check.
The app tracks weak spots and builds revision around them automatically.
</p>
</td></tr>
</table>
<p style="font-size:15px;color:#111827;font-weight:bold;margin:0 0 12px;">What you get with Elec-Mate:</p>
<table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="margin:0 0 24px;">
<tr><td style="padding:12px 16px;border:1px solid #e5e7eb;border-radius:6px;">
<p style="font-size:14px;color:#111827;font-weight:bold;margin:0 0 4px;">&#128218; Full course library</p>
<p style="font-size:13px;color:#6b7280;margin:0;line-height:1.5;">Level 2 and Level 3 theory broken into short lessons you can do on the bus.</p>
</td></tr>
<tr><td style="height:10px;"></td></tr>
<tr><td style="padding:12px 16px;border:1px solid #e5e7eb;border-radius:6px;">
<p style="font-size:14px;color:#111827;font-weight:bold;margin:0 0 4px;">&#10067; Practice quizzes</p>
<p style="font-size:13px;color:#6b7280;margin:0;line-height:1.5;">Thousands of exam-style questions with worked answers, scored as you go.</p>
</td></tr>
<tr><td style="height:10px;"></td></tr>
<tr><td style="padding:12px 16px;border:1px solid #e5e7eb;border-radius:6px;">
<p style="font-size:14px;color:#111827;font-weight:bold;margin:0 0 4px;">&#128295; AM2 preparation</p>
<p style="font-size:13px;color:#6b7280;margin:0;line-height:1.5;">Step-by-step walkthroughs of the AM2 tasks, inspection sequences and safe isolation.</p>
</td></tr>
<tr><td style="height:10px;"></td></tr>
<tr><td style="padding:12px 16px;border:1px solid #e5e7eb;border-radius:6px;">
<p style="font-size:14px;color:#111827;font-weight:bold;margin:0 0 4px;">&#128194; Site portfolio</p>
<p style="font-size:13px;color:#6b7280;margin:0;line-height:1.5;">Log jobs and photos from site straight into your NVQ evidence portfolio.</p>
</td></tr>
</table>
<table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="margin:0 0 28px;">
<tr><td align="center" style="background-color:#111827;padding:24px;border-radius:6px;">
<p style="font-size:15px;color:#ffffff;margin:0 0 4px;">All of it for <strong style="color:#3b82f6;">&pound;9.99/month</strong> after your free trial</p>
<p style="font-size:13px;color:#9ca3af;margin:0 0 16px;">Cheaper than a single night-school textbook.</p>
<a href="https://elec-mate.com/auth?intent=trial" style="display:inline-block;background-color:#3b82f6;color:#ffffff;font-size:15px;font-weight:bold;text-decoration:none;padding:12px 32px;border-radius:6px;">Start my free trial</a>
</td></tr>
</table>
<p style="font-size:14px;color:#374151;line-height:1.6;margin:0 0 4px;">Good luck with the studying,</p>
<p style="font-size:14px;color:#374151;line-height:1.6;margin:0;">The Elec-Mate team</p>
</td></tr>
<tr><td style="background-color:#f9fafb;border-top:1px solid #e5e7eb;padding:20px 32px;">
<p style="font-size:12px;color:#9ca3af;margin:0 0 4px;">You're receiving this because you created an Elec-Mate account.</p>
<p style="font-size:12px;color:#9ca3af;margin:0;">&copy; {{ year }} Elec-Mate. All rights reserved.</p>
</td></tr>
</table>
</td></tr>
</table>
</body>
</html>
`
